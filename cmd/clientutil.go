/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/leettrack/leettrack/client"
	"github.com/leettrack/leettrack/session"
)

const defaultAPIURL = "http://localhost:4000"

func apiURL() string {
	if url := os.Getenv("LEETTRACK_API_URL"); url != "" {
		return url
	}
	return defaultAPIURL
}

func newSession() (*session.Store, error) {
	return session.New("")
}

// newClient wires a client against the configured backend. An expired
// or rejected token clears the session so the next command asks for a
// fresh login instead of failing the same way again.
func newClient(sessions *session.Store) *client.Client {
	return client.New(apiURL(), sessions).OnUnauthorized(func() {
		sessions.Clear()
		fmt.Fprintln(os.Stderr, "session expired, run `leettrack login` again")
	})
}
