package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReference builds a receipt reference like pay20260831120000-1a2b3c4d.
func GenerateReference(prefix string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s%s-%s", prefix, time.Now().Format("20060102150405"), suffix)
}
