// Package app предоставляет маршруты приложения.
//
// Политика доступа каждого маршрута объявляется явно в таблице routes:
// open — без проверок, auth — требуется валидный токен, admin и
// instructor — токен плюс соответствующая роль. Исходная система
// оставляла мутирующие маршруты без проверок; здесь таблица закрывает
// их самой строгой осмысленной политикой (решение зафиксировано
// в DESIGN.md). Для нового маршрута политика указывается обязательно.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	cartadd "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/cart/add"
	cartlist "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/cart/list"
	cartremove "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/cart/remove"
	classcreate "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/class/create"
	classdetailed "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/class/detailedlist"
	classlist "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/class/list"
	classremove "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/class/remove"
	classupdatestatus "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/class/updatestatus"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/health"
	instructorlist "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/instructor/list"
	paymentfinalize "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/payment/finalize"
	paymentintent "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/payment/intent"
	paymentlist "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/payment/list"
	tokenissue "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/token/issue"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/adminstatus"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/demote"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/instructorstatus"
	userlist "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/list"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/promote"
	userregister "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/handlers/user/register"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/middlewarectx"
	applibjwt "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/jwt"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
	cartservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/cart"
	classservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/class"
	paymentservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/payment"
	userservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/user"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/storage/mongodb"
)

// policy определяет требование доступа маршрута.
type policy int

const (
	policyOpen       policy = iota // без проверок
	policyAuth                     // валидный токен
	policyAdmin                    // токен + роль admin
	policyInstructor               // токен + роль instructor
)

// route — одна строка таблицы маршрутов: метод, шаблон, политика, обработчик.
type route struct {
	method  string
	pattern string
	policy  policy
	handler http.Handler
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokenMaker applibjwt.Maker,
	userService *userservice.Service, classService *classservice.Service,
	cartService *cartservice.Service, paymentService *paymentservice.Service,
	db *mongodb.Storage,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	routes := []route{
		{http.MethodGet, "/", policyOpen, health.New(logger)},

		{http.MethodGet, "/users", policyAdmin, userlist.New(logger, userService)},
		{http.MethodPost, "/users", policyOpen, userregister.New(logger, userService)},
		{http.MethodGet, "/users/admin/{email}", policyAuth, adminstatus.New(logger, userService)},
		{http.MethodGet, "/users/instructor/{email}", policyAuth, instructorstatus.New(logger, userService)},
		{http.MethodPatch, "/users/admin/{id}", policyAdmin, promote.New(logger, userService, models.RoleAdmin)},
		{http.MethodPatch, "/users/instructor/{id}", policyAdmin, promote.New(logger, userService, models.RoleInstructor)},
		{http.MethodPatch, "/users/role/{id}", policyAdmin, demote.New(logger, userService)},

		{http.MethodPost, "/jwt", policyOpen, tokenissue.New(logger, tokenMaker)},

		{http.MethodGet, "/classes", policyOpen, classlist.New(logger, classService)},
		{http.MethodPost, "/classes", policyInstructor, classcreate.New(logger, classService)},
		{http.MethodPut, "/classes/{id}", policyAdmin, classupdatestatus.New(logger, classService)},
		{http.MethodDelete, "/classes/{id}", policyInstructor, classremove.New(logger, classService)},
		{http.MethodGet, "/detailed-classes", policyOpen, classdetailed.New(logger, classService)},

		{http.MethodGet, "/instructors", policyOpen, instructorlist.New(logger, db)},

		{http.MethodGet, "/carts", policyAuth, cartlist.New(logger, cartService)},
		{http.MethodPost, "/carts", policyAuth, cartadd.New(logger, cartService)},
		{http.MethodDelete, "/carts/{id}", policyAuth, cartremove.New(logger, cartService)},

		{http.MethodPost, "/create-payment-intent", policyAuth, paymentintent.New(logger, paymentService)},
		{http.MethodGet, "/payment", policyAuth, paymentlist.New(logger, paymentService)},
		{http.MethodPost, "/payment", policyAuth, paymentfinalize.New(logger, paymentService)},
	}

	authMw := middlewarectx.JWTMiddleware(tokenMaker, logger)
	limitMw := middlewarectx.RateLimitMiddleware(logger)
	adminMw := middlewarectx.RequireRole(models.RoleAdmin, userService, logger)
	instructorMw := middlewarectx.RequireRole(models.RoleInstructor, userService, logger)

	for _, rt := range routes {
		var handler http.Handler = rt.handler
		switch rt.policy {
		case policyAuth:
			handler = authMw(limitMw(handler))
		case policyAdmin:
			handler = authMw(limitMw(adminMw(handler)))
		case policyInstructor:
			handler = authMw(limitMw(instructorMw(handler)))
		case policyOpen:
		}
		r.Method(rt.method, rt.pattern, handler)
	}

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
