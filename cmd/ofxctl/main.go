package main

import "github.com/sellerdesk/go-fin-ledger/cmd/ofxctl/cmd"

func main() {
	cmd.Execute()
}
