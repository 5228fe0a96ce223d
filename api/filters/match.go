package filters

// MatchHistoryParams binds the pagination window of the match history routes.
// The bounds mirror what the upstream match id listing accepts.
type MatchHistoryParams struct {
	Start int `form:"start,default=0" binding:"min=0"`
	Count int `form:"count,default=10" binding:"min=1,max=100"`
}
