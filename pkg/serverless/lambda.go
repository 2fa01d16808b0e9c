package serverless

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// LambdaHandler는 API Gateway 프록시 이벤트를 받는 Lambda 핸들러 타입입니다
type LambdaHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler는 주어진 Fiber 앱으로 요청을 전달하는 Lambda 핸들러를 생성합니다
func NewLambdaHandler(app *fiber.App) LambdaHandler {
	fiberLambda := fiberadapter.New(app)
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return fiberLambda.ProxyWithContext(ctx, req)
	}
}

var (
	handler     LambdaHandler
	handlerOnce sync.Once
)

// Handler는 AWS Lambda 핸들러 함수입니다. 첫 요청 시 Fiber 앱을 Lambda 어댑터에 연결합니다.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	handlerOnce.Do(func() {
		utils.Info("lambda", "AWS Lambda에서 Fiber 앱 초기화")
		handler = NewLambdaHandler(GetApp())
	})
	return handler(ctx, req)
}

// LambdaMain은 AWS Lambda 진입점 함수입니다
func LambdaMain() {
	lambda.Start(Handler)
}
