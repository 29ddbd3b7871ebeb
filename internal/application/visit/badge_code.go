package visit

import (
	"fmt"
	"math/rand/v2"
)

// GenerateBadgeCode produce una sugerencia de código de crachá: prefijo "V"
// más cinco dígitos. El formulario puede editarla; la unicidad se garantiza
// recién en el INSERT (constraint UNIQUE sobre badges.code).
func GenerateBadgeCode() string {
	return fmt.Sprintf("V%05d", 10000+rand.IntN(90000))
}
