package filters

// RiotIdURIParams binds the /:gameName/:gameTag style routes.
type RiotIdURIParams struct {
	GameName string `uri:"gameName" binding:"required"`
	GameTag  string `uri:"gameTag" binding:"required"`
}

// PuuidURIParams binds the /:puuid style routes.
type PuuidURIParams struct {
	Puuid string `uri:"puuid" binding:"required"`
}

// ValidPuuid checks the shape of a puuid before hitting the upstream.
// Puuids are long tokens of letters, digits, dashes and underscores.
func ValidPuuid(puuid string) bool {
	if len(puuid) <= 50 {
		return false
	}

	for _, c := range puuid {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
