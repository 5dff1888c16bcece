package main

import (
	"context"
	"trakthub/cmd/trakthub/commands"
	"trakthub/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "trakthub-cli")
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
