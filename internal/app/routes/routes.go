package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwss/sevaportal/internal/app/controllers"
	"github.com/mwss/sevaportal/internal/middleware"
)

// SetupRouter configures all application routes. Paths mirror what the
// frontend already calls, so nothing is versioned under /api.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	examController *controllers.ExamController,
	membershipController *controllers.MembershipController,
	contentController *controllers.ContentController,
	inquiryController *controllers.InquiryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/admin/login", authController.AdminLogin)
		auth.POST("/admin/register", authController.AdminRegister)
		auth.POST("/student/login", authController.StudentLogin)
		auth.POST("/student/register", authController.StudentRegister)
	}

	// --- Public site routes ---
	public := api.Group("/public")
	{
		public.GET("/admit-card/:rollNumber", examController.PublicAdmitCard)
		public.GET("/settings", contentController.PublicSettings)
		public.GET("/payment-config/:type", contentController.PublicPaymentConfigs)
		public.GET("/content/:sectionKey", contentController.PublicContent)
		public.GET("/fee-structures", contentController.PublicFeeStructures)
		public.GET("/pages/:slug", contentController.PublicPage)
		public.POST("/volunteer-apply", inquiryController.ApplyVolunteer)
		public.POST("/contact", inquiryController.SubmitInquiry)
	}

	// Membership sign-up is public; listing and editing are not.
	api.POST("/memberships", membershipController.CreateMembership)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.GET("/my-profile", examController.MyProfile)
		authenticated.GET("/my-membership-card", membershipController.MyCard)

		// Owner-or-admin checks happen in the handlers.
		authenticated.GET("/students/:id", studentController.Get)
		authenticated.GET("/results", examController.ListResults)
		authenticated.GET("/results/student/:studentId", examController.ResultsForStudent)
		authenticated.GET("/admit-cards", examController.ListAdmitCards)
		authenticated.GET("/admit-cards/student/:studentId", examController.AdmitCardsForStudent)
	}

	// --- Admin-only routes ---
	adminOnly := api.Group("")
	adminOnly.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		adminOnly.GET("/students", studentController.List)
		adminOnly.POST("/students", studentController.Create)
		adminOnly.PATCH("/students/:id", studentController.Update)
		adminOnly.DELETE("/students/:id", studentController.Delete)
		adminOnly.POST("/admin/students/:id/payment", studentController.RecordPayment)
		adminOnly.GET("/admin/fee-records", studentController.FeeRecords)
		adminOnly.GET("/dashboard/stats", studentController.DashboardStats)
		adminOnly.POST("/admin/roll-numbers/bulk", studentController.BulkRollNumbers)

		adminOnly.POST("/results", examController.CreateResult)
		adminOnly.PATCH("/results/:id", examController.UpdateResult)
		adminOnly.DELETE("/results/:id", examController.DeleteResult)
		adminOnly.POST("/admin/results/bulk", examController.BulkResults)
		adminOnly.POST("/admit-cards", examController.CreateAdmitCard)
		adminOnly.DELETE("/admit-cards/:id", examController.DeleteAdmitCard)

		adminOnly.GET("/memberships", membershipController.ListMemberships)
		adminOnly.PATCH("/memberships/:id", membershipController.UpdateMembership)
		adminOnly.DELETE("/memberships/:id", membershipController.DeleteMembership)
		adminOnly.GET("/admin/membership-cards", membershipController.ListCards)
		adminOnly.POST("/admin/membership-cards", membershipController.CreateCard)
		adminOnly.PATCH("/admin/membership-cards/:id", membershipController.UpdateCard)
		adminOnly.DELETE("/admin/membership-cards/:id", membershipController.DeleteCard)

		admin := adminOnly.Group("/admin")
		{
			admin.GET("/menu", contentController.Menu)
			admin.GET("/menu/all", contentController.MenuAll)
			admin.POST("/menu", contentController.CreateMenuItem)
			admin.PATCH("/menu/:id", contentController.UpdateMenuItem)
			admin.DELETE("/menu/:id", contentController.DeleteMenuItem)

			admin.GET("/settings", contentController.Settings)
			admin.GET("/settings/:key", contentController.Setting)
			admin.PATCH("/settings/:key", contentController.UpdateSetting)
			admin.POST("/settings", contentController.CreateSetting)

			admin.GET("/payment-config", contentController.PaymentConfigs)
			admin.POST("/payment-config", contentController.CreatePaymentConfig)
			admin.PATCH("/payment-config/:id", contentController.UpdatePaymentConfig)
			admin.DELETE("/payment-config/:id", contentController.DeletePaymentConfig)

			admin.GET("/content-sections", contentController.ContentSections)
			admin.POST("/content-sections", contentController.CreateContentSection)
			admin.PATCH("/content-sections/:id", contentController.UpdateContentSection)
			admin.DELETE("/content-sections/:id", contentController.DeleteContentSection)

			admin.GET("/fee-structures", contentController.FeeStructures)
			admin.POST("/fee-structures", contentController.CreateFeeStructure)
			admin.PATCH("/fee-structures/:id", contentController.UpdateFeeStructure)
			admin.DELETE("/fee-structures/:id", contentController.DeleteFeeStructure)

			admin.GET("/pages", contentController.Pages)
			admin.POST("/pages", contentController.CreatePage)
			admin.PATCH("/pages/:id", contentController.UpdatePage)
			admin.DELETE("/pages/:id", contentController.DeletePage)

			admin.GET("/volunteers", inquiryController.ListVolunteers)
			admin.PATCH("/volunteers/:id", inquiryController.UpdateVolunteer)
			admin.DELETE("/volunteers/:id", inquiryController.DeleteVolunteer)

			admin.GET("/contact-inquiries", inquiryController.ListInquiries)
			admin.PATCH("/contact-inquiries/:id", inquiryController.UpdateInquiry)
			admin.DELETE("/contact-inquiries/:id", inquiryController.DeleteInquiry)
		}
	}
}
