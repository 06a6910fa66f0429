package host_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/host"
	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRecorder_RecordsInOrder(t *testing.T) {
	r := host.NewRecorder("/app/vendor", nil)

	require.NoError(t, r.AddRun(domain.HookDescriptor{Type: "DI", Name: "A", Method: "boot"}))
	require.NoError(t, r.AddRun(domain.HookDescriptor{Type: "DI", Name: "B", Method: "boot"}))
	require.NoError(t, r.AddTerminated(domain.HookDescriptor{Type: "DI", Name: "A", Method: "stop"}))
	require.NoError(t, r.AddDefinitions(domain.PathReference("/app/vendor/a/b/di.php")))
	require.NoError(t, r.AddDefinitions(domain.EvaluatedReference(domain.Definitions{})))

	plan := r.Plan()
	assert.Equal(t, []domain.HookDescriptor{
		{Type: "DI", Name: "A", Method: "boot"},
		{Type: "DI", Name: "B", Method: "boot"},
	}, plan.Run)
	assert.Equal(t, []domain.HookDescriptor{{Type: "DI", Name: "A", Method: "stop"}}, plan.Terminated)
	assert.Len(t, plan.Definitions, 2)
	assert.Equal(t, "/app/vendor", r.BasePath())
}

func TestRecorder_RejectsInvalidRegistrations(t *testing.T) {
	r := host.NewRecorder("", nil)

	err := r.AddRun(domain.HookDescriptor{Type: "class", Name: "A", Method: "boot"})
	require.ErrorContains(t, err, domain.ErrHostRegistrationFailed.Error())

	err = r.AddTerminated(domain.HookDescriptor{Type: "DI", Method: "boot"})
	require.ErrorContains(t, err, domain.ErrHostRegistrationFailed.Error())

	err = r.AddDefinitions(domain.DIReference{})
	require.ErrorContains(t, err, domain.ErrHostRegistrationFailed.Error())

	plan := r.Plan()
	assert.Empty(t, plan.Run)
	assert.Empty(t, plan.Terminated)
	assert.Empty(t, plan.Definitions)
}

func TestRecorder_Call(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockExtensionInvoker(ctrl)
	defs := domain.Definitions{"a": "b"}
	invoker.EXPECT().Call(gomock.Any(), "A::b").Return(defs, nil)

	got, err := host.NewRecorder("", invoker).Call(context.Background(), "A::b")
	require.NoError(t, err)
	assert.Equal(t, defs, got)
}

func TestRecorder_CallPropagatesInvokerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockExtensionInvoker(ctrl)
	callErr := errors.New("boom")
	invoker.EXPECT().Call(gomock.Any(), "A::b").Return(nil, callErr)

	_, err := host.NewRecorder("", invoker).Call(context.Background(), "A::b")
	require.ErrorIs(t, err, callErr)
}

func TestRecorder_CallWithoutInvoker(t *testing.T) {
	_, err := host.NewRecorder("", nil).Call(context.Background(), "A::b")
	require.ErrorContains(t, err, domain.ErrExtensionPointFailed.Error())
}
