package apierrors

const (
	MsgFailListTasks         = "failListTasks"
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgSubtaskNotFound       = "subtaskNotFound"
	MsgInvalidSubtaskPayload = "invalidSubtaskPayload"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailGenerateSubtasks  = "failGenerateSubtasks"
)
