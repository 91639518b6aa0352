package companion

type CompanionContainer struct {
	Handler *Handler
}

func NewCompanionContainer() *CompanionContainer {
	return &CompanionContainer{Handler: NewHandler(NewBrain())}
}
