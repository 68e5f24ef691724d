package slquickemu

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestAutoRAM(t *testing.T) {
	tests := []struct {
		memKB    uint64
		expected string
	}{
		{128000000, "4G"},
		{64000000, "4G"},
		{63999999, "3G"},
		{16000000, "3G"},
		{15999999, "2G"},
		{8000000, "2G"},
		{0, "2G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, autoRAM(tt.memKB), "memKB=%d", tt.memKB)
	}
}

func TestAutoCores(t *testing.T) {
	tests := []struct {
		physical int
		expected int
	}{
		{32, 4},
		{8, 4},
		{7, 2},
		{1, 2},
		{0, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, autoCores(tt.physical), "physical=%d", tt.physical)
	}
}

func TestRAMArgLogsHostMemory(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	ram := ramArg(DefaultConfig("vm"), fakeHost{memKB: 16000000}, log)
	assert.Equal(t, "3G", ram)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "3G", entry.Data["ram"])
		assert.NotEmpty(t, entry.Data["host_memory"])
	}
}

func TestSystemProbe(t *testing.T) {
	var probe HostProbe = SystemProbe{}

	kb, err := probe.MemoryKB()
	if err != nil {
		t.Skipf("host memory not readable: %v", err)
	}
	assert.Positive(t, kb)

	cores, err := probe.PhysicalCores()
	if err != nil {
		t.Skipf("host cores not readable: %v", err)
	}
	assert.GreaterOrEqual(t, cores, 0)
}
