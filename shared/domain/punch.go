package domain

import "time"

type PunchId = int64

type Punch struct {
	Id        PunchId   `json:"id"`
	CardId    CardId    `json:"card_id"`
	PuncherId PersonId  `json:"puncher_id"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
}

type PunchCreationData struct {
	CardId    CardId
	PuncherId PersonId
	Date      time.Time
	Reason    string
}

// CardPunch is a punch as listed on its card, with the puncher expanded.
type CardPunch struct {
	Id      PunchId   `json:"id"`
	Puncher Person    `json:"puncher"`
	Date    time.Time `json:"date"`
	Reason  string    `json:"reason"`
}
