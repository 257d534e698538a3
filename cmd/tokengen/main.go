// Package main provides a CLI tool for generating test tokens for the user
// registry API. These tokens use the dev signing key and will NOT work
// against a production deployment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"user-registry/internal/jwttoken"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuer   = "user-registry"
	defaultAudience = "user-registry-client"
	defaultTokenTTL = 15 * time.Minute
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Type      string            `json:"type"`
	ExpiresIn string            `json:"expires_in"`
	Subject   string            `json:"subject"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	subject := flag.String("subject", "dev-client", "Token subject recorded as the audit actor")
	signingKey := flag.String("signing-key", "", "Signing key. Defaults to the dev key from config.")
	ttl := flag.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	key := *signingKey
	if key == "" {
		key = devSigningKey
	}

	svc := jwttoken.NewService(key, defaultIssuer, defaultAudience)
	token, err := svc.GenerateAccessToken(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		output := tokenOutput{
			Token:     token,
			Type:      "access_token",
			ExpiresIn: ttl.String(),
			Subject:   *subject,
			Usage: map[string]string{
				"header": "Authorization: Bearer <token>",
			},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Access Token (JWT)")
	fmt.Println("==================")
	fmt.Printf("Subject:    %s\n", *subject)
	fmt.Printf("Expires In: %s\n", *ttl)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/users/")
}
