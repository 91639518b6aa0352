package progress

type ProgressContainer struct {
	Handler *Handler
}

func NewProgressContainer(scores ScoreSource, sets SetCounter, topics TopicCounter) *ProgressContainer {
	service := NewService(scores, sets, topics)
	handler := NewHandler(service)

	return &ProgressContainer{Handler: handler}
}
