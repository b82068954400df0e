package domain

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// Company is the signing context of one STP client company. It replaces any
// process-wide configuration: every instruction is built against one.
type Company struct {
	Empresa         string
	BankCode        string // operating institution, defaults to STPBankCode
	CuentaOrdenante string // default originator CLABE, optional

	// Now and Intn feed the generated defaults. Tests replace them.
	Now  func() time.Time
	Intn func(n int) int

	mu      sync.Mutex
	lastSec int64
	seq     int64
}

// NewCompany creates a Company using the wall clock and math/rand/v2.
func NewCompany(empresa, bankCode, cuentaOrdenante string) *Company {
	if bankCode == "" {
		bankCode = STPBankCode
	}
	return &Company{
		Empresa:         empresa,
		BankCode:        bankCode,
		CuentaOrdenante: cuentaOrdenante,
		Now:             time.Now,
		Intn:            rand.IntN,
	}
}

func (c *Company) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Company) intn(n int) int {
	if c.Intn == nil {
		return rand.IntN(n)
	}
	return c.Intn(n)
}

// nextClaveRastreo returns CR<unix seconds>. Further keys generated within
// the same second get a base-36 sequence suffix, CR<unix seconds>S<n>, so a
// Company never hands out the same default twice in one second.
func (c *Company) nextClaveRastreo() string {
	sec := c.now().Unix()

	c.mu.Lock()
	defer c.mu.Unlock()
	if sec != c.lastSec {
		c.lastSec = sec
		c.seq = 0
		return fmt.Sprintf("CR%d", sec)
	}
	c.seq++
	return fmt.Sprintf("CR%dS%s", sec, strconv.FormatInt(c.seq, 36))
}
