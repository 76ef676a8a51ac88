package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// abortWithIssues renders a 400 with the structured per-field issue list.
func abortWithIssues(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"issues":  issuesFor(err),
		"message": "Validation issues!",
	})
}

func issuesFor(err error) []gin.H {
	issues := []gin.H{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			issues = append(issues, gin.H{
				"path":    []string{strings.ToLower(fe.Field())},
				"code":    fe.Tag(),
				"message": issueMessage(fe),
			})
		}
		return issues
	}

	// Body that didn't decode at all (bad JSON, wrong field type).
	return append(issues, gin.H{"message": err.Error()})
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	default:
		return fe.Error()
	}
}
