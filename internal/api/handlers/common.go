package handlers

import "github.com/gofiber/fiber/v2"

// businessIDFromLocals reads the tenant id the auth middleware stored for
// this request. A missing or mistyped value means the route was wired
// without the middleware, so the request cannot be tenant-scoped.
func businessIDFromLocals(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("business_id").(uint)
	return id, ok && id != 0
}
