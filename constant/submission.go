package constant

const (
	SubmissionSuccessMessage = "Form submission successful"

	SubmissionCreatedRoutingKey = "submission.created"
	SubmissionExchange          = "submission_exchange"
	SubmissionQueue             = "submission_notify_queue"
)
