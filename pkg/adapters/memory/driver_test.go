package memory_test

import (
	"testing"

	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/ports"
)

func TestMemoryDriver_Contract(t *testing.T) {
	driver := memory.New()
	ports.RunDriverContract(t, driver)
}
