package room

import (
	"math/rand"
	"unicode/utf8"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RoomId is the short human-typeable session code: four random alphanumeric
// characters. It doubles as the suffix of the persistence key.
type RoomId [4]byte

// GenerateId draws a fresh code. Collisions are possible; the caller that
// saves second wins the key.
func GenerateId() RoomId {
	var id RoomId
	for i := range id {
		id[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return id
}

// ParseId accepts exactly four ASCII characters and fails with ErrInvalid on
// anything else.
func ParseId(s string) (RoomId, error) {
	var id RoomId
	if len(s) != len(id) {
		return id, ErrInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return id, ErrInvalid
		}
		id[i] = s[i]
	}
	return id, nil
}

func (id RoomId) String() string {
	return string(id[:])
}

func (id RoomId) MarshalText() ([]byte, error) {
	return []byte(id[:]), nil
}

func (id *RoomId) UnmarshalText(text []byte) error {
	parsed, err := ParseId(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
