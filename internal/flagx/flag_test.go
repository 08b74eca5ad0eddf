package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "localhost:9000", "-x", "ignored", "-i", "5"}
	got := FilterArgs(args, []string{"-a", "-i"})
	assert.Equal(t, []string{"-a", "localhost:9000", "-i", "5"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=addr", "-other=zzz"}
	got := FilterArgs(args, []string{"--config", "-a"})
	assert.Equal(t, []string{"--config=conf.json", "-a=addr"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a"}
	got := FilterArgs(args, []string{"-a"})
	assert.Equal(t, []string{"-a"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"cmd", "-c", "custom.json", "-a", "addr"}
	assert.Equal(t, "custom.json", JsonConfigFlags())

	os.Args = []string{"cmd", "-a", "addr"}
	assert.Equal(t, "", JsonConfigFlags())
}
