package queuevalues

// Game mode labels per queue id.
// This table is a compatibility surface with the web client, don't rename the
// labels without updating the frontend.
var queueGameMode = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	1700: "Arena",
}

// Label used for any queue id not on the table, including customs.
const DefaultGameMode = "Custom Game"

// ArenaQueueId is the only queue with augments and subteam placements.
const ArenaQueueId = 1700

// GameModeName returns the display label for a given queue id.
func GameModeName(queueId int) string {
	if name, ok := queueGameMode[queueId]; ok {
		return name
	}
	return DefaultGameMode
}
