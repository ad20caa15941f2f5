package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// Paquete objectid genera identificadores hexadecimales de 24 caracteres
// (4 bytes de timestamp Unix + 8 bytes aleatorios), el mismo formato que
// exponen las rutas públicas de la API para productos y categorías.

const encodedLen = 24

// New genera un identificador nuevo. Los primeros 4 bytes son el timestamp
// Unix en big-endian, lo que mantiene los IDs aproximadamente ordenables
// por fecha de creación.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand sobre el sistema operativo no falla en la práctica;
		// si lo hace, no hay fuente de aleatoriedad utilizable.
		panic("objectid: sin fuente de aleatoriedad: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}

// IsValid verifica que s sea un identificador hexadecimal de 24 caracteres.
func IsValid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	for i := 0; i < encodedLen; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
