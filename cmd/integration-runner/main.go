package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	composeFile    = "tests/docker/docker-compose.integration.yml"
	composeProject = "sunsip-integration-test"
	mockServerDir  = "tests/mocks/weather-server"
)

// testPorts are published by the compose project: postgres, mock upstream, redis
var testPorts = []string{"5433", "8081", "6380"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "setup":
		setupIntegrationTests()
	case "run":
		runIntegrationTests()
	case "cleanup":
		cleanupIntegrationTests()
	case "test":
		setupIntegrationTests()
		runIntegrationTests()
		cleanupIntegrationTests()
	case "quick":
		runIntegrationTests()
	case "status":
		showStatus()
	case "logs":
		showLogs()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Integration Test Runner")
	fmt.Println("Usage: go run ./cmd/integration-runner <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  setup   - Start PostgreSQL, Redis and the mock upstream server")
	fmt.Println("  run     - Run integration tests")
	fmt.Println("  cleanup - Stop and remove the test containers")
	fmt.Println("  test    - Full test cycle (setup + run + cleanup)")
	fmt.Println("  quick   - Run tests without setup")
	fmt.Println("  status  - Show service status")
	fmt.Println("  logs    - Show service logs")
}

func setupIntegrationTests() {
	fmt.Println("Setting up integration test environment...")
	fmt.Printf("Only affecting containers with project name '%s'\n", composeProject)

	checkPortConflicts()
	prepareMockServer()

	compose("down", "--volumes")
	compose("up", "-d")

	waitForServices()

	fmt.Println("Integration test environment is ready")
}

func runIntegrationTests() {
	fmt.Println("Running integration tests...")

	cmd := exec.Command("go", "test", "-v", "-count=1", "-timeout=10m", "./tests/integration/...")
	cmd.Env = append(os.Environ(), "INTEGRATION_TESTS=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("Integration tests failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Integration tests completed successfully")
}

func cleanupIntegrationTests() {
	fmt.Println("Cleaning up integration test environment...")
	compose("down", "--volumes")
	fmt.Println("Integration test environment cleaned up")
}

func waitForServices() {
	fmt.Println("Waiting for services to be ready...")

	maxRetries := 60
	for i := 0; i < maxRetries; i++ {
		if servicesReady() {
			fmt.Println("All services are ready")
			return
		}

		fmt.Printf("Waiting for services... (%d/%d)\n", i+1, maxRetries)
		time.Sleep(2 * time.Second)
	}

	fmt.Println("Services failed to start within timeout")
	showLogs()
	os.Exit(1)
}

// servicesReady dials the database and cache ports and asks the mock server for its health
func servicesReady() bool {
	for _, port := range []string{"5433", "6380"} {
		conn, err := net.DialTimeout("tcp", "localhost:"+port, time.Second)
		if err != nil {
			return false
		}
		_ = conn.Close()
	}

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://localhost:8081/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func checkPortConflicts() {
	var conflicts []string
	for _, port := range testPorts {
		listener, err := net.Listen("tcp", "localhost:"+port)
		if err != nil {
			conflicts = append(conflicts, port)
			continue
		}
		_ = listener.Close()
	}

	if len(conflicts) > 0 {
		fmt.Printf("Warning: The following ports are in use: %s\n", strings.Join(conflicts, ", "))
		fmt.Println("Integration tests may fail if these ports conflict with test services.")
	}
}

func showStatus() {
	fmt.Println("Integration test services status:")
	compose("ps")
}

func showLogs() {
	fmt.Println("Integration test service logs:")
	compose("logs")
}

func prepareMockServer() {
	fmt.Println("Preparing mock upstream server dependencies...")

	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = mockServerDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Printf("Failed to run go mod tidy in mock upstream server: %v", err)
		os.Exit(1)
	}
}

func compose(args ...string) {
	runCommand("docker", append([]string{"compose", "-f", composeFile, "-p", composeProject}, args...)...)
}

func runCommand(name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Printf("Command failed: %s %v - %v", name, args, err)
	}
}
