package models

import "time"

const (
	MinPrice int32 = 10
	MaxPrice int32 = 200

	// MaxSerial bounds serials drawn under the reassign policy.
	MaxSerial int32 = 300
)

type Product struct {
	Serial int32 `json:"serial"`
	Price  int32 `json:"price"`
}

type Offer struct {
	Serial int32 `json:"serial"`
	Price  int32 `json:"price"`
}

type PriceChange struct {
	Serial   int32     `json:"serial"`
	Price    int32     `json:"price"`
	Sequence uint64    `json:"sequence"`
	At       time.Time `json:"at"`
}

type Rotation struct {
	Sequence uint64    `json:"sequence"`
	Products []Product `json:"products"`
	At       time.Time `json:"at"`
}

type Quote struct {
	At        time.Time `json:"at"`
	Serial    int32     `json:"serial"`
	Price     int32     `json:"price"`
	Offer     int32     `json:"offer"`
	Confirmed bool      `json:"confirmed"`
}
