package startup

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedDependency struct {
	name      string
	dependsOn []string
	failures  int
	log       *[]string
}

func (d *recordedDependency) GetName() string     { return d.name }
func (d *recordedDependency) DependsOn() []string { return d.dependsOn }

func (d *recordedDependency) Start(ctx context.Context) error {
	if d.failures > 0 {
		d.failures--
		return errors.New("not ready")
	}
	*d.log = append(*d.log, "start "+d.name)
	return nil
}

func (d *recordedDependency) Stop(ctx context.Context) error {
	*d.log = append(*d.log, "stop "+d.name)
	return nil
}

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {})
}

func TestStartRespectsDependencyOrder(t *testing.T) {
	var log []string
	boot := NewStartup(noopLogger(), 1)
	boot.AddDependency(&recordedDependency{name: "server", dependsOn: []string{"database"}, log: &log})
	boot.AddDependency(&recordedDependency{name: "database", log: &log})

	require.NoError(t, boot.Start(context.Background()))
	assert.Equal(t, []string{"start database", "start server"}, log)
}

func TestStopReversesStartOrder(t *testing.T) {
	var log []string
	boot := NewStartup(noopLogger(), 1)
	boot.AddDependency(&recordedDependency{name: "database", log: &log})
	boot.AddDependency(&recordedDependency{name: "consumer", dependsOn: []string{"database"}, log: &log})
	boot.AddDependency(&recordedDependency{name: "server", dependsOn: []string{"database"}, log: &log})

	require.NoError(t, boot.Start(context.Background()))
	require.NoError(t, boot.Stop(context.Background()))

	assert.Equal(t, []string{
		"start database", "start consumer", "start server",
		"stop server", "stop consumer", "stop database",
	}, log)
}

func TestStopSkipsNeverStarted(t *testing.T) {
	var log []string
	boot := NewStartup(noopLogger(), 1)
	boot.AddDependency(&recordedDependency{name: "database", log: &log})
	boot.AddDependency(&recordedDependency{name: "server", dependsOn: []string{"database"}, failures: 1, log: &log})

	require.Error(t, boot.Start(context.Background()))
	require.NoError(t, boot.Stop(context.Background()))
	assert.Equal(t, []string{"start database", "stop database"}, log)
}

func TestStartRetriesUntilMaxAttempts(t *testing.T) {
	var log []string
	boot := NewStartup(noopLogger(), 2)
	boot.AddDependency(&recordedDependency{name: "database", failures: 1, log: &log})

	require.NoError(t, boot.Start(context.Background()))
	assert.Equal(t, []string{"start database"}, log)
}
