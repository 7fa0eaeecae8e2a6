package apiv1

// JobEventPayload is the oneof payload carried by a JobEvent. The
// generated wrapper types (JobEvent_StateChanged, JobEvent_Progress,
// JobEvent_Log, JobEvent_Completed, JobEvent_Failed) implement it; the
// alias lets other packages name the payload in constructor signatures.
type JobEventPayload = isJobEvent_Payload
