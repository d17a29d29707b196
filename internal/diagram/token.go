package diagram

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewToken generates an identity token for one render attempt: a
// timestamp plus a random suffix. It only gives the rendering library a
// stable handle; it carries no other meaning.
func NewToken() string {
	return fmt.Sprintf("diagram-%d-%06x", time.Now().UnixMilli(), rand.Uint32N(1<<24))
}
