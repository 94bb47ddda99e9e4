// Package greeting holds the demo greeting helper.
package greeting

import "fmt"

// SayHello returns an enthusiastic greeting for the given name.
func SayHello(name string) string {
	return fmt.Sprintf("Hello %s!!!!", name)
}
