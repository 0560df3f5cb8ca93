// README: Demo binary; classifies sample messages and prints routing and extracted params.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/modules/supervisor"
)

func main() {
	state := conversation.NewState("demo", "")

	fmt.Println("Gõ tin nhắn (Ctrl+D để thoát):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		msg := scanner.Text()
		if msg == "" {
			continue
		}

		domain := supervisor.Classify(msg, state)
		fmt.Printf("  domain: %s\n", domain)

		if domain == conversation.DomainFlight {
			params := supervisor.Extract(msg)
			state.Search = conversation.MergeSearchParams(state.Search, params)
			fmt.Printf("  params: %s → %s, đi %s, về %s, %d khách, %s\n",
				state.Search.Origin, state.Search.Destination,
				state.Search.DepartureDate, state.Search.ReturnDate,
				state.Search.Adults, state.Search.TripType)
			for _, sug := range state.Search.Suggestions {
				fmt.Printf("  gợi ý (%s): %v\n", sug.Country, sug.Airports)
			}
		}

		state.AppendUser(msg)
	}
}
