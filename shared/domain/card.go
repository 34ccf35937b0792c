package domain

type (
	CardId    = int64
	CardTitle = string
)

type Card struct {
	Id       CardId    `json:"id"`
	Title    CardTitle `json:"title"`
	Capacity int       `json:"capacity"`
}

type CardCreationData struct {
	Title    CardTitle
	Capacity int
}

// FullCard is a card together with every punch made on it, each punch
// carrying its puncher. It is assembled from a join and never stored.
type FullCard struct {
	Card
	Punches []CardPunch `json:"punches"`
}

// Remaining returns the number of unpunched slots.
func (c FullCard) Remaining() int {
	return max(0, c.Capacity-len(c.Punches))
}
