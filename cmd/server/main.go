package main // Entry point package

import (
    "context"
    "log" // Logging library
    "time"

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/chat"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/config"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/database"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/handler"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/queue"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/repository"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/router"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/seed"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/session"
    queue_publisher "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/service"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/syncer"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/workflow"
)

func main() {
    _ = godotenv.Load() // Load .env if present; real env wins
    cfg := config.Load()

    ctx := context.Background()

    // Persistent store: Redis when reachable, in-memory otherwise.
    rdb := config.NewRedisClient()
    var st store.Store
    if rdb != nil {
        st = store.NewRedisStore(rdb)
    } else {
        log.Println("redis unavailable, using in-memory store (no durability)")
        st = store.NewMemoryStore()
    }

    // Registries load persisted state or fall back to the seed data.
    facilities := registry.NewFacilityRegistry(ctx, st, seed.Facilities())
    users := registry.NewUserRegistry(ctx, st, seed.Users())
    bookings := registry.NewBookingStore(ctx, st, seed.Bookings())
    reviews := registry.NewReviewBoard(st, seed.Reviews())
    courts := seed.Courts()

    sess := session.New(st)
    sess.Restore(ctx) // rehydrate a previously signed-in user

    // Synchronizer: picks up external facility writes every two seconds
    // and on store change notifications.
    sy := syncer.New(facilities, st, syncer.DefaultInterval)
    sy.Start(ctx)
    defer sy.Stop()

    // Booking events flow through RabbitMQ; the consumer appends them
    // to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    manager := workflow.NewManager(workflow.Config{
        Bookings: bookings,
        Courts:   courts,
        Timings:  workflow.DefaultTimings(),
        OnConfirmed: func(b model.Booking) {
            ev := confirmedEvent(b, facilities, courts)
            pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
            defer cancel()
            _ = queue_publisher.PublishBookingConfirmed(pubCtx, ev) // best effort
        },
    })
    defer manager.Shutdown()

    var chatClient *chat.Client
    if cfg.ChatAPIKey != "" {
        var err error
        chatClient, err = chat.NewClient(cfg.ChatAPIKey, cfg.ChatModel)
        if err != nil {
            log.Printf("chat client disabled: %v", err)
        }
    }

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, sess, users), cfg.JWTSecret, rdb)
    router.RegisterCatalog(e,
        handler.NewCatalogHandler(facilities, courts, rdb),
        handler.NewReviewHandler(reviews, facilities),
        handler.NewQuoteHandler(facilities),
        handler.NewChatHandler(chatClient, facilities),
        rdb)
    fh := handler.NewFacilityHandler(cfg, facilities)
    bh := handler.NewBookingHandler(bookings)
    router.RegisterOwner(e, fh, cfg.JWTSecret)
    router.RegisterAdmin(e, fh, handler.NewUserHandler(users), bh, cfg.JWTSecret)
    router.RegisterBooking(e, handler.NewWorkflowHandler(manager, facilities), bh, cfg.JWTSecret)

    // The relational passthrough only mounts when a database user is
    // configured; the rest of the service runs without SQL.
    if cfg.DBUser != "" {
        db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Fatalf("mysql connect failed: %v", err)
        }
        defer db.Close()
        router.RegisterCrud(e, handler.NewCrudHandler(repository.NewTableRepo(db)))
    }

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err) // Log and exit if server fails
    }
}

// confirmedEvent flattens a booking into its queue payload, resolving
// the facility and court names the consumers log.
func confirmedEvent(b model.Booking, facilities *registry.FacilityRegistry, courts []model.Court) queue.BookingConfirmedEvent {
    ev := queue.BookingConfirmedEvent{
        BookingID:     b.ID,
        UserID:        b.UserID,
        FacilityID:    b.FacilityID,
        Date:          b.Date,
        TimeSlot:      b.TimeSlot,
        DurationHours: b.Duration,
        PersonCount:   b.PersonCount,
        TotalPrice:    b.TotalPrice,
        ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if f, err := facilities.ByID(b.FacilityID); err == nil {
        ev.FacilityName = f.Name
    }
    for _, c := range courts {
        if c.ID == b.CourtID {
            ev.CourtName = c.Name
            ev.Sport = c.Sport
            break
        }
    }
    return ev
}
