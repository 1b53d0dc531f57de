package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLength = 7

// newID генерирует идентификатор вида bk_<unix millis>_<7 случайных символов>
func newID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]
	return fmt.Sprintf("bk_%d_%s", now.UnixMilli(), suffix)
}
