package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/skabbuzaid/AiBackend/internal/container"
	"github.com/skabbuzaid/AiBackend/internal/router"
)

var adapter *chiadapter.ChiLambdaV2

func init() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ChatHandler:      c.ChatContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		FlashcardHandler: c.FlashcardContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
		CompanionHandler: c.CompanionContainer.Handler,
		SessionHandler:   c.SessionHandler,
	})

	adapter = chiadapter.NewV2(r)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContextV2(ctx, req)
}

func main() {
	lambda.Start(handler)
}
