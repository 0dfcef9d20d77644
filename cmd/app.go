// Package cmd implements the CLI application to query the reference data of
// the National Bank of Ukraine.
package cmd

import (
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/yshulhan/nbudata/bankgov"
)

// Commands lists the subcommands. A main package registers them on a
// commander and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&ratesCmd{},
	&bondsCmd{},
	&saveCmd{},
	&paymentsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var exchangeURL = flag.String("exchange-url", bankgov.DefaultExchangeURL, "Endpoint serving the exchange rates")
var securitiesURL = flag.String("securities-url", bankgov.DefaultSecuritiesURL, "Endpoint serving the government-bond register")

// newClient builds the API client from the app flags.
func newClient() *bankgov.Client {
	return bankgov.NewClient(bankgov.Config{
		ExchangeURL:   *exchangeURL,
		SecuritiesURL: *securitiesURL,
	})
}

// parseList splits a comma separated flag value, dropping blanks, so that
// "UA1, UA2" and "UA1,UA2" read the same.
func parseList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
