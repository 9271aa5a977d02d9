package app

import (
	"log"
	"os"

	"github.com/gridfall/progression/internal/http/middleware"
)

func (a *application) InitErrorHandler() *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log.New(os.Stdout, "[http] ", log.LstdFlags))
}
