package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/validation"
)

// Context keys for validated request parts.
const (
	ctxValidatedBody   = "validated_body"
	ctxValidatedQuery  = "validated_query"
	ctxValidatedParams = "validated_params"
)

// ValidateRequest validates the declared request parts against their schemas
// before the handler runs. On success each part is replaced by its coerced
// form in the request context; on failure the full ordered violation list is
// returned as a 400 envelope and the handler never runs.
func ValidateRequest(body, query, params *validation.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		if params != nil {
			values := map[string]string{}
			for _, field := range params.Fields {
				if v := c.Param(field.Name); v != "" {
					values[field.Name] = v
				}
			}
			coerced, verr := params.ValidateValues(values)
			if verr != nil {
				dto.ValidationErrorResponse(c, verr)
				c.Abort()
				return
			}
			c.Set(ctxValidatedParams, coerced)
		}

		if query != nil {
			values := map[string]string{}
			for _, field := range query.Fields {
				if v, ok := c.GetQuery(field.Name); ok {
					values[field.Name] = v
				}
			}
			coerced, verr := query.ValidateValues(values)
			if verr != nil {
				dto.ValidationErrorResponse(c, verr)
				c.Abort()
				return
			}
			c.Set(ctxValidatedQuery, coerced)
		}

		if body != nil {
			raw := map[string]any{}
			if err := c.ShouldBindJSON(&raw); err != nil {
				dto.ErrorResponse(c, http.StatusBadRequest, "Bad Request", "Invalid JSON body: "+err.Error())
				c.Abort()
				return
			}
			coerced, verr := body.ValidateMap(raw)
			if verr != nil {
				dto.ValidationErrorResponse(c, verr)
				c.Abort()
				return
			}
			c.Set(ctxValidatedBody, coerced)
		}

		c.Next()
	}
}

// ValidatedBody returns the coerced request body.
func ValidatedBody(c *gin.Context) map[string]any {
	return validatedPart(c, ctxValidatedBody)
}

// ValidatedQuery returns the coerced query parameters.
func ValidatedQuery(c *gin.Context) map[string]any {
	return validatedPart(c, ctxValidatedQuery)
}

// ValidatedParams returns the coerced path parameters.
func ValidatedParams(c *gin.Context) map[string]any {
	return validatedPart(c, ctxValidatedParams)
}

func validatedPart(c *gin.Context, key string) map[string]any {
	value, exists := c.Get(key)
	if !exists {
		return map[string]any{}
	}
	part, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return part
}
