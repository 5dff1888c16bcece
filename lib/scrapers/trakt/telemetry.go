package trakt

import (
	"github.com/go-resty/resty/v2"

	"trakthub/lib/restyutil"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes every client constructed afterwards dump
// its raw request/response exchanges to the output. Used by the CLI's
// verbose mode.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}

func instrumentOutput(client *resty.Client) {
	restyutil.DumpExchanges(client, restyInstrumentOutput)
}
