// Package seed holds the static demo data the registries start from.
// The facility registry additionally reconciles against this set on
// refresh: user-added records survive, seed records are restored.
package seed

import (
    "time"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
)

// TimeSlots is the fixed list of bookable one-hour intervals. Bookings
// always start at one of these slots regardless of their duration.
var TimeSlots = []string{
    "06:00-07:00", "07:00-08:00", "08:00-09:00", "09:00-10:00",
    "10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00",
    "14:00-15:00", "15:00-16:00", "16:00-17:00", "17:00-18:00",
    "18:00-19:00", "19:00-20:00", "20:00-21:00", "21:00-22:00",
}

// ValidSlot reports whether s is one of the fixed time slots.
func ValidSlot(s string) bool {
    for _, slot := range TimeSlots {
        if slot == s {
            return true
        }
    }
    return false
}

func date(value string) time.Time {
    t, _ := time.Parse("2006-01-02", value)
    return t
}

// Facilities returns a fresh copy of the seed facility set.
func Facilities() []model.Facility {
    return []model.Facility{
        {
            ID: "1", Name: "Elite Sports Complex", Location: "Downtown Arena, City Center",
            Description: "Premium sports facility with state-of-the-art equipment and professional courts. Perfect for tournaments and casual play.",
            Sports:    []string{"Badminton", "Tennis", "Basketball"},
            Amenities: []string{"Parking", "Changing Rooms", "Cafeteria", "AC", "Equipment Rental", "WiFi", "Water Dispenser"},
            Images: []string{
                "https://images.pexels.com/photos/863988/pexels-photo-863988.jpeg?auto=compress&cs=tinysrgb&w=800",
                "https://images.pexels.com/photos/1263426/pexels-photo-1263426.jpeg?auto=compress&cs=tinysrgb&w=800",
            },
            Rating: 4.8, PricePerHour: 25, OwnerID: "owner_1", Status: model.StatusApproved, CreatedAt: date("2024-01-15"),
        },
        {
            ID: "2", Name: "Green Field Football Turf", Location: "Sports Valley, North District",
            Description: "Artificial turf football ground perfect for 5v5 and 7v7 matches. Professional quality with floodlights.",
            Sports:    []string{"Football", "Cricket"},
            Amenities: []string{"Parking", "Floodlights", "Changing Rooms", "First Aid", "Equipment Rental", "Water Dispenser"},
            Images:    []string{"https://images.pexels.com/photos/274422/pexels-photo-274422.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.5, PricePerHour: 35, OwnerID: "owner_2", Status: model.StatusApproved, CreatedAt: date("2024-02-10"),
        },
        {
            ID: "3", Name: "Royal Badminton Academy", Location: "Heritage Club, East Wing",
            Description: "Professional badminton courts with wooden flooring and perfect lighting. Coaching available.",
            Sports:    []string{"Badminton"},
            Amenities: []string{"AC", "Parking", "Equipment Rental", "Coaching Available", "Spectator Seating", "WiFi"},
            Images:    []string{"https://images.pexels.com/photos/976873/pexels-photo-976873.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.9, PricePerHour: 20, OwnerID: "owner_3", Status: model.StatusApproved, CreatedAt: date("2024-01-28"),
        },
        {
            ID: "4", Name: "Sky High Basketball Arena", Location: "Sports Hub, West Zone",
            Description: "Indoor basketball courts with professional hoops and air conditioning. Perfect for tournaments.",
            Sports:    []string{"Basketball"},
            Amenities: []string{"AC", "Parking", "Changing Rooms", "Equipment Rental", "Spectator Seating", "WiFi", "Water Dispenser"},
            Images:    []string{"https://images.pexels.com/photos/358042/pexels-photo-358042.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.7, PricePerHour: 30, OwnerID: "owner_4", Status: model.StatusApproved, CreatedAt: date("2024-03-01"),
        },
        {
            ID: "5", Name: "Tennis Paradise", Location: "Garden Club, South District",
            Description: "Professional tennis courts with clay and hard court options. Coaching and equipment available.",
            Sports:    []string{"Tennis"},
            Amenities: []string{"AC", "Parking", "Changing Rooms", "Equipment Rental", "Coaching Available", "Spectator Seating", "WiFi"},
            Images:    []string{"https://images.pexels.com/photos/573945/pexels-photo-573945.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.6, PricePerHour: 40, OwnerID: "owner_5", Status: model.StatusApproved, CreatedAt: date("2024-02-15"),
        },
        {
            ID: "6", Name: "Cricket Champions Ground", Location: "Sports Complex, Central Area",
            Description: "Professional cricket ground with practice nets and floodlights. Perfect for training and matches.",
            Sports:    []string{"Cricket"},
            Amenities: []string{"Parking", "Floodlights", "Changing Rooms", "Practice Nets", "Equipment Rental", "Water Dispenser"},
            Images:    []string{"https://images.pexels.com/photos/3621104/pexels-photo-3621104.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.4, PricePerHour: 50, OwnerID: "owner_6", Status: model.StatusApproved, CreatedAt: date("2024-01-20"),
        },
        {
            ID: "7", Name: "Volleyball Victory Court", Location: "Beach Sports Zone, Coastal Area",
            Description: "Indoor and outdoor volleyball courts with professional equipment and coaching.",
            Sports:    []string{"Volleyball"},
            Amenities: []string{"AC", "Parking", "Changing Rooms", "Equipment Rental", "Coaching Available", "WiFi"},
            Images:    []string{"https://images.pexels.com/photos/1432039/pexels-photo-1432039.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.3, PricePerHour: 25, OwnerID: "owner_7", Status: model.StatusApproved, CreatedAt: date("2024-02-25"),
        },
        {
            ID: "8", Name: "Table Tennis Pro Center", Location: "Indoor Sports Hub, Downtown",
            Description: "Professional table tennis facility with multiple tables and coaching available.",
            Sports:    []string{"Table Tennis"},
            Amenities: []string{"AC", "Parking", "Equipment Rental", "Coaching Available", "WiFi", "Water Dispenser"},
            Images:    []string{"https://images.pexels.com/photos/573945/pexels-photo-573945.jpeg?auto=compress&cs=tinysrgb&w=800"},
            Rating:    4.8, PricePerHour: 15, OwnerID: "owner_8", Status: model.StatusApproved, CreatedAt: date("2024-03-10"),
        },
    }
}

// Users returns a fresh copy of the seed account set.
func Users() []model.User {
    return []model.User{
        {ID: "user_1", Email: "john.player@example.com", Name: "John Player", Role: model.RolePlayer,
            Phone: "+91 98765 43210", FavoriteSports: []string{"Badminton", "Tennis"},
            CreatedAt: date("2024-01-15"), Status: model.UserActive},
        {ID: "user_2", Email: "mike.owner@sports.com", Name: "Mike Owner", Role: model.RoleOwner,
            Phone: "+91 87654 32109", FavoriteSports: []string{"Football", "Cricket"},
            CreatedAt: date("2024-02-10"), Status: model.UserActive},
        {ID: "user_3", Email: "sarah.player@example.com", Name: "Sarah Player", Role: model.RolePlayer,
            Phone: "+91 76543 21098", FavoriteSports: []string{"Basketball", "Volleyball"},
            CreatedAt: date("2024-03-05"), Status: model.UserBanned},
        {ID: "user_4", Email: "elite.sports@contact.com", Name: "Elite Sports Complex", Role: model.RoleOwner,
            Phone: "+91 65432 10987", FavoriteSports: []string{"Multi-sport"},
            CreatedAt: date("2024-01-28"), Status: model.UserActive},
        {ID: "user_5", Email: "admin@quickcourt.com", Name: "Admin User", Role: model.RoleAdmin,
            Phone: "+91 54321 09876", FavoriteSports: []string{"All Sports"},
            CreatedAt: date("2024-01-01"), Status: model.UserActive},
        {ID: "user_6", Email: "alex.tennis@example.com", Name: "Alex Tennis", Role: model.RolePlayer,
            Phone: "+91 43210 98765", FavoriteSports: []string{"Tennis", "Table Tennis"},
            CreatedAt: date("2024-02-20"), Status: model.UserActive},
        {ID: "user_7", Email: "royal.academy@contact.com", Name: "Royal Academy", Role: model.RoleOwner,
            Phone: "+91 32109 87654", FavoriteSports: []string{"Badminton", "Squash"},
            CreatedAt: date("2024-02-15"), Status: model.UserActive},
        {ID: "user_8", Email: "emma.fitness@example.com", Name: "Emma Fitness", Role: model.RolePlayer,
            Phone: "+91 21098 76543", FavoriteSports: []string{"Yoga", "Pilates"},
            CreatedAt: date("2024-03-10"), Status: model.UserActive},
    }
}

// Courts returns the static court reference data.
func Courts() []model.Court {
    return []model.Court{
        {ID: "1", FacilityID: "1", Name: "Court A1", Sport: "Badminton", Environment: model.EnvironmentIndoor, PricePerHour: 20, IsActive: true},
        {ID: "2", FacilityID: "1", Name: "Court A2", Sport: "Badminton", Environment: model.EnvironmentIndoor, PricePerHour: 20, IsActive: true},
        {ID: "3", FacilityID: "1", Name: "Tennis Court 1", Sport: "Tennis", Environment: model.EnvironmentOutdoor, PricePerHour: 30, IsActive: true},
        {ID: "4", FacilityID: "2", Name: "Main Turf", Sport: "Football", Environment: model.EnvironmentOutdoor, PricePerHour: 35, IsActive: true},
        {ID: "5", FacilityID: "3", Name: "Court 1", Sport: "Badminton", Environment: model.EnvironmentIndoor, PricePerHour: 20, IsActive: true},
        {ID: "6", FacilityID: "3", Name: "Court 2", Sport: "Badminton", Environment: model.EnvironmentIndoor, PricePerHour: 20, IsActive: true},
        {ID: "7", FacilityID: "4", Name: "Basketball Court 1", Sport: "Basketball", Environment: model.EnvironmentIndoor, PricePerHour: 30, IsActive: true},
        {ID: "8", FacilityID: "4", Name: "Basketball Court 2", Sport: "Basketball", Environment: model.EnvironmentIndoor, PricePerHour: 30, IsActive: true},
        {ID: "9", FacilityID: "5", Name: "Clay Court 1", Sport: "Tennis", Environment: model.EnvironmentOutdoor, PricePerHour: 40, IsActive: true},
        {ID: "10", FacilityID: "5", Name: "Hard Court 1", Sport: "Tennis", Environment: model.EnvironmentOutdoor, PricePerHour: 40, IsActive: true},
        {ID: "11", FacilityID: "6", Name: "Main Ground", Sport: "Cricket", Environment: model.EnvironmentOutdoor, PricePerHour: 50, IsActive: true},
        {ID: "12", FacilityID: "6", Name: "Practice Net 1", Sport: "Cricket", Environment: model.EnvironmentOutdoor, PricePerHour: 25, IsActive: true},
        {ID: "13", FacilityID: "7", Name: "Indoor Court 1", Sport: "Volleyball", Environment: model.EnvironmentIndoor, PricePerHour: 25, IsActive: true},
        {ID: "14", FacilityID: "7", Name: "Outdoor Court 1", Sport: "Volleyball", Environment: model.EnvironmentOutdoor, PricePerHour: 20, IsActive: true},
        {ID: "15", FacilityID: "8", Name: "Table 1", Sport: "Table Tennis", Environment: model.EnvironmentIndoor, PricePerHour: 15, IsActive: true},
        {ID: "16", FacilityID: "8", Name: "Table 2", Sport: "Table Tennis", Environment: model.EnvironmentIndoor, PricePerHour: 15, IsActive: true},
    }
}

// Bookings returns the demo booking history shown before any real
// booking is made.
func Bookings() []model.Booking {
    return []model.Booking{
        {ID: "1", UserID: "user_1", FacilityID: "1", CourtID: "1", Date: "2024-12-25", TimeSlot: "10:00-11:00",
            Duration: 1, TotalPrice: 20, Status: model.BookingConfirmed, CreatedAt: date("2024-12-20"), PersonCount: 1},
        {ID: "2", UserID: "user_1", FacilityID: "2", CourtID: "4", Date: "2024-12-28", TimeSlot: "16:00-17:00",
            Duration: 1, TotalPrice: 35, Status: model.BookingConfirmed, CreatedAt: date("2024-12-21"), PersonCount: 1},
        {ID: "3", UserID: "user_1", FacilityID: "3", CourtID: "5", Date: "2024-12-30", TimeSlot: "18:00-19:00",
            Duration: 1, TotalPrice: 20, Status: model.BookingConfirmed, CreatedAt: date("2024-12-22"), PersonCount: 1},
        {ID: "4", UserID: "user_1", FacilityID: "4", CourtID: "7", Date: "2025-01-02", TimeSlot: "14:00-16:00",
            Duration: 2, TotalPrice: 60, Status: model.BookingConfirmed, CreatedAt: date("2024-12-23"), PersonCount: 1},
        {ID: "5", UserID: "user_1", FacilityID: "5", CourtID: "9", Date: "2025-01-05", TimeSlot: "09:00-10:00",
            Duration: 1, TotalPrice: 40, Status: model.BookingConfirmed, CreatedAt: date("2024-12-24"), PersonCount: 1},
    }
}

// Reviews returns the seed reviews merged into every facility's board.
func Reviews() []model.Review {
    return []model.Review{
        {ID: "r1", FacilityID: "1", UserName: "Aarav Sharma", Rating: 5,
            Comment: "Excellent courts and great lighting. Staff was very helpful!", CreatedAt: date("2024-12-12")},
        {ID: "r2", FacilityID: "1", UserName: "Neha Patel", Rating: 4,
            Comment: "Good facilities and clean changing rooms. Slightly crowded in evenings.", CreatedAt: date("2024-12-18")},
        {ID: "r3", FacilityID: "2", UserName: "Rohit Verma", Rating: 5,
            Comment: "Best turf in the area. Floodlights make evening games great.", CreatedAt: date("2024-12-15")},
        {ID: "r4", FacilityID: "3", UserName: "Priya Singh", Rating: 5,
            Comment: "Wooden flooring is perfect and the coaching is top notch.", CreatedAt: date("2024-12-10")},
        {ID: "r5", FacilityID: "4", UserName: "Karan Mehta", Rating: 4,
            Comment: "Good hoops and AC, booking was easy.", CreatedAt: date("2024-12-19")},
    }
}
