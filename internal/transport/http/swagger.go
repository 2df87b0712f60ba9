package http

import (
	"net/http"
	"os"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

// RegisterSwagger serves the YAML API description as JSON at
// /swagger/doc.json and the UI under /swagger. The file is converted on first
// request and cached.
func RegisterSwagger(e *echo.Echo, specPath string, logger *zap.Logger) {
	var (
		once     sync.Once
		jsonSpec []byte
		loadErr  error
	)
	load := func() {
		data, err := os.ReadFile(specPath)
		if err != nil {
			loadErr = err
			return
		}
		jsonSpec, loadErr = yaml.YAMLToJSON(data)
	}

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		once.Do(load)
		if loadErr != nil {
			logger.Error("load swagger spec", zap.String("path", specPath), zap.Error(loadErr))
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
