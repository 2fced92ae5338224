package greeter

import "fmt"

// Greet returns "Hello, <name>!" with name inserted verbatim
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
