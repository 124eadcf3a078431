package main

import (
	"context"
	"time"

	"github.com/quotely/formrelay/internal/app"
)

// formrelay receives web form submissions (insurance quote requests),
// validates them and relays each one by email to a fixed recipient.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
