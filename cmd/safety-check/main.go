package main

import (
	"fmt"
	"os"
	"os/exec"
)

const composeProject = "sunsip-integration-test"

var services = []struct {
	name string
	port string
}{
	{name: "postgres-test", port: "5433 (PostgreSQL)"},
	{name: "redis-test", port: "6380 (Redis)"},
	{name: "mock-upstream", port: "8081 (Mock weather and city lookup API)"},
}

func main() {
	fmt.Println("Integration Test Container Safety Check")
	fmt.Println("=====================================")

	fmt.Println("\n1. Current Docker containers:")
	runCommand("docker", "ps", "-a", "--format", "table {{.Names}}\t{{.Status}}\t{{.Ports}}")

	fmt.Println("\n2. Containers that would be affected by integration tests:")
	for _, s := range services {
		fmt.Printf("   - %s-%s-1\n", composeProject, s.name)
	}

	fmt.Println("\n3. Test ports that will be used:")
	for _, s := range services {
		fmt.Printf("   - %s\n", s.port)
	}

	fmt.Println("\n4. Checking if integration test containers already exist:")
	cmd := exec.Command("docker", "ps", "-a", "--filter", "label=com.docker.compose.project="+composeProject, "--format", "{{.Names}}")
	output, err := cmd.Output()
	if err != nil {
		fmt.Println("   Error checking containers:", err)
		return
	}

	if len(output) == 0 {
		fmt.Println("   ✓ No integration test containers found")
	} else {
		fmt.Println("   Found existing integration test containers:")
		fmt.Print(string(output))
	}

	fmt.Printf("\n5. Only containers with project name '%s' will be affected.\n", composeProject)
	fmt.Println("   Your existing containers are safe!")
}

func runCommand(name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("Command failed: %s %v - %v\n", name, args, err)
	}
}
