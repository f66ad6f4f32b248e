package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

func TestTreeCmd_DefaultsToTable(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newTreeCmd())

	mockWorkflow.On("Tree", mock.Anything, mock.MatchedBy(func(args domain.TreeArgs) bool {
		return args.Root == m.Path("a.cpp") && args.Format == domain.FormatTable && args.Stdout != nil
	})).Return(nil)

	cmd.SetArgs([]string{"tree", "a.cpp"})
	require.NoError(t, cmd.Execute())
}

func TestTreeCmd_FormatAndSearchPaths(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newTreeCmd())

	mockWorkflow.On("Tree", mock.Anything, mock.MatchedBy(func(args domain.TreeArgs) bool {
		return args.Format == domain.FormatYAML && assertSearchPaths(args.SearchPaths, "inc")
	})).Return(nil)

	cmd.SetArgs([]string{"tree", "-I", "inc", "--format", "yaml", "a.cpp"})
	require.NoError(t, cmd.Execute())
}

func TestTreeCmd_RejectsSeveralRoots(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newTreeCmd())

	cmd.SetArgs([]string{"tree", "a.cpp", "b.cpp"})
	require.Error(t, cmd.Execute())
	mockWorkflow.AssertNotCalled(t, "Tree", mock.Anything, mock.Anything)
}
