package versioning

// Set at build time through -ldflags "-X github.com/Ethernal-Tech/cosmos-chain-api/versioning.Commit=..."
var (
	Commit    = "unknown"
	Branch    = "unknown"
	BuildTime = "unknown"
)
