// --- classdemo/cmd/demonstration1/main.go ---

package main

import (
	"log"
	"os"

	"github.com/v4rm4n/classdemo/internal/classdemo"
)

func main() {
	if err := classdemo.Run(os.Stdout); err != nil {
		log.Fatalf("Could not write demo output: %v", err)
	}
}
