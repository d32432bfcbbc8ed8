package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Answerer produces an answer for a search query.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

// Run drives the interactive query loop on the given streams until the user
// types exit/quit or the input reaches EOF.
func Run(ctx context.Context, r io.Reader, w io.Writer, agent Answerer) error {
	fmt.Fprintln(w, "\nWelcome to the Search Assistant")
	fmt.Fprintln(w, "-------------------------------")
	fmt.Fprintln(w, "Ask any question to search for information.")
	fmt.Fprintln(w, "Type 'exit' to quit.")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\nEnter your search query: ")

		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		if strings.EqualFold(query, "exit") || strings.EqualFold(query, "quit") {
			fmt.Fprintln(w, "Thank you for using the Search Assistant. Goodbye!")
			return nil
		}

		fmt.Fprintln(w, "\nSearching...")
		fmt.Fprintf(w, "\n%s\n", agent.Answer(ctx, query))
	}

	return scanner.Err()
}
