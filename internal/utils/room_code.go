package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// GenerateRoomCode generates a random 6-character room code drawn from
// A-Z0-9. The exists callback reports whether a code is already taken;
// generation retries until it finds a free one.
func GenerateRoomCode(exists func(code string) (bool, error)) (string, error) {
	for {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		taken, err := exists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
}

func randomCode() (string, error) {
	bytes := make([]byte, roomCodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	code := make([]byte, roomCodeLength)
	for i, b := range bytes {
		code[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(code), nil
}
