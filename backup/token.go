package backup

const TokenEnvVar = "BACKUP_INFLUX_TOKEN"

// DefaultToken is used when TokenEnvVar is unset or empty.
const DefaultToken = "my-super-secret-admin-token"

type LookupEnvFunc func(key string) (string, bool)

func ResolveToken(lookup LookupEnvFunc) (string, bool) {
	if value, ok := lookup(TokenEnvVar); ok && value != "" {
		return value, false
	}
	return DefaultToken, true
}

// MaskToken hides all but the last four characters of a token for logging.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
