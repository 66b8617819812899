//go:build ignore

// This script generates random API keys for the API_KEYS variable.
// Run with: go run scripts/generate_keys.go [count]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func generateKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func main() {
	count := 1
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid key count %q\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	keys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		key, err := generateKey(32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	fmt.Println("=== Print Orders API Key Generator ===")
	fmt.Println()
	fmt.Println("Add to your environment:")
	fmt.Println()
	fmt.Printf("AUTH_ENABLED=true\n")
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
}
