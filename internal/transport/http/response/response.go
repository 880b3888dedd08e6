package response

import "github.com/gin-gonic/gin"

// Every body carries a success flag; failures add a message and optionally a
// validation detail under "errors".

func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func FailValidation(c *gin.Context, status int, message, detail string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"errors":  detail,
	})
}
