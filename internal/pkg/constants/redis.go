package constants

// Redis key formats
const (
	KeyActiveDustbins = "dustbins:active" // JSON array of every active record
	KeyDustbin        = "dustbin:%s"      // Format: dustbin:{dustbin_id}
)
