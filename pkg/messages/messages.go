package messages

const (
	BadStatusCodeMsg   = "API returned status code %d on URL %s"
	EmptyMatchIdMsg    = "match id can't be empty"
	EmptyPuuidMsg      = "puuid can't be empty"
	EmptyRiotIdMsg     = "game name and tag line can't be empty"
	FailedToParseMsg   = "failed to parse API response"
	InvalidPaginateMsg = "start must be non negative and count between 1 and 100"
	RequestFailedMsg   = "API request failed on URL %s"
)
