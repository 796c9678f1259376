package interfaces

import "context"

// ITaskDispatcher hands a solicitação id to the asynchronous execution
// facility (in-process pool or SQS).
//
// Dispatch returns immediately with an opaque task handle; the worker reloads
// everything it needs from the repository by id. A dispatch failure must leave
// the solicitação pendente with no partial state, so intake can retry or
// surface the error.

type ITaskDispatcher interface {
	Dispatch(ctx context.Context, solicitacaoID string) (taskID string, err error)
}
