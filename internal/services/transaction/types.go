package transaction

// Config holds the ledger behaviour switches.
type Config struct {
	// StrictSessionScope makes get, update and delete match the caller's
	// session as well as the id. Off by default: any session can reach any
	// id it knows.
	StrictSessionScope bool
}
