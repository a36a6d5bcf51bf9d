package cryptox

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// ErrTooManyAttempts is returned when wrong-key decryption attempts exceed
// the throttle.
var ErrTooManyAttempts = errors.New("too many failed decryption attempts")

// Decryptor wraps Decrypt with a throttle on failed attempts. A wrong key
// is a local, non-fatal condition, but unbounded retries would let someone
// with access to the terminal grind at a passphrase; failures are also
// logged so repeated attempts leave a trace.
type Decryptor struct {
	limiter *rate.Limiter
	log     logging.Logger
}

// NewDecryptor builds a Decryptor allowing a burst of 2 failed attempts,
// refilling one attempt every 2 seconds.
func NewDecryptor(log logging.Logger) *Decryptor {
	return &Decryptor{
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 2),
		log:     log,
	}
}

// Decrypt opens the armored payload. Wrong-key failures consume limiter
// tokens; once exhausted, further attempts fail fast with
// ErrTooManyAttempts until the limiter refills.
func (d *Decryptor) Decrypt(ctx context.Context, armored, key string) (string, error) {
	plaintext, err := Decrypt(armored, key)
	if err == nil {
		return plaintext, nil
	}
	if errors.Is(err, ErrInvalidKey) {
		d.log.Warn(ctx, "decryption attempt with invalid key")
		if !d.limiter.Allow() {
			return "", ErrTooManyAttempts
		}
	}
	return "", err
}
