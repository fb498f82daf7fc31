package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"artag/internal/app"
	"artag/internal/artag"
	"artag/internal/config"
	"artag/internal/encryption"
	"artag/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "scan", "artwork add").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// currentUserID resolves the stored session, translating a missing or
// expired session into a uniform message.
func currentUserID(a *app.App) (string, error) {
	userID, err := a.Auth.CurrentUserID()
	if err != nil {
		if errors.Is(err, artag.ErrNotLoggedIn) {
			return "", fmt.Errorf("not logged in: run 'artag login' first")
		}
		return "", err
	}
	return userID, nil
}

// readPassword prompts for a password without echo.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

// stringFlag returns a pointer to the flag value if it was set, nil otherwise.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func printArtwork(a *model.Artwork) {
	fmt.Printf("ID:         %s\n", a.ID)
	fmt.Printf("Title:      %s\n", a.Title)
	if a.Artist != "" {
		fmt.Printf("Artist:     %s\n", a.Artist)
	}
	if a.Year != "" {
		fmt.Printf("Year:       %s\n", a.Year)
	}
	if a.Medium != "" {
		fmt.Printf("Medium:     %s\n", a.Medium)
	}
	if a.Dimensions != "" {
		fmt.Printf("Dimensions: %s\n", a.Dimensions)
	}
	fmt.Printf("Status:     %s\n", a.Status)
	if a.ImageURL != "" {
		fmt.Printf("Image:      %s\n", a.ImageURL)
	}
	fmt.Printf("Created:    %s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
}

var rootCmd = &cobra.Command{
	Use:   "artag",
	Short: "Artwork registry with NFC tag authentication",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		installID := uuid.New().String()

		secretBytes := make([]byte, 32)
		if _, err := rand.Read(secretBytes); err != nil {
			return fmt.Errorf("generating auth secret: %w", err)
		}

		cfg := config.NewConfig(installID, hex.EncodeToString(secretBytes), defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		// Generate the session encryption key pair alongside the config.
		enc := encryption.NewAgeEncryptor(cfg.Auth.PublicKeyPath, cfg.Auth.PrivateKeyPath)
		if err := enc.Setup(); err != nil {
			return fmt.Errorf("generating session keys: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Install ID: %s\n", installID)
		fmt.Printf("Base Dir:   %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Install ID: %s\n", cfg.InstallID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Database:   %s\n", cfg.Database.Type)
		fmt.Printf("Media:      %s\n", cfg.Media.Type)
		fmt.Printf("Reader:     %s\n", cfg.Reader.Type)
		return nil
	},
}

// account commands
var registerCmd = &cobra.Command{
	Use:   "register USERNAME",
	Short: "Create a local account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("register")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		profile, err := a.Auth.Register(cmd.Context(), args[0], password)
		if err != nil {
			if errors.Is(err, artag.ErrUsernameTaken) {
				return fmt.Errorf("username %q is already taken", args[0])
			}
			return err
		}

		fmt.Printf("Account created: %s\n", profile.Username)
		fmt.Println("Run 'artag login' to start a session.")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Log in and store a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("login")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		profile, err := a.Auth.Login(cmd.Context(), args[0], password)
		if err != nil {
			if errors.Is(err, artag.ErrUnauthorized) {
				return fmt.Errorf("invalid username or password")
			}
			return err
		}

		fmt.Printf("Logged in as %s\n", profile.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("passwd")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		oldPassword, err := readPassword("Current password: ")
		if err != nil {
			return err
		}
		newPassword, err := readPassword("New password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm new password: ")
		if err != nil {
			return err
		}
		if newPassword != confirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := a.Auth.ChangePassword(cmd.Context(), userID, oldPassword, newPassword); err != nil {
			if errors.Is(err, artag.ErrUnauthorized) {
				return fmt.Errorf("current password is incorrect")
			}
			return err
		}

		fmt.Println("Password changed.")
		return nil
	},
}

// profile commands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("profile show")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		p, err := a.Registry.GetProfile(cmd.Context(), userID)
		if err != nil {
			return err
		}

		fmt.Printf("Username:  %s\n", p.Username)
		if p.FullName != "" {
			fmt.Printf("Full name: %s\n", p.FullName)
		}
		if p.Bio != "" {
			fmt.Printf("Bio:       %s\n", p.Bio)
		}
		if p.AvatarURL != "" {
			fmt.Printf("Avatar:    %s\n", p.AvatarURL)
		}
		fmt.Printf("Joined:    %s\n", p.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("profile update")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		upd := artag.ProfileUpdate{
			Username: stringFlag(cmd, "username"),
			FullName: stringFlag(cmd, "full-name"),
			Bio:      stringFlag(cmd, "bio"),
		}

		p, err := a.Registry.UpdateProfile(cmd.Context(), userID, upd)
		if err != nil {
			if errors.Is(err, artag.ErrUsernameTaken) {
				return fmt.Errorf("that username is already taken")
			}
			return err
		}

		fmt.Printf("Profile updated: %s\n", p.Username)
		return nil
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar FILE",
	Short: "Upload a profile avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("profile avatar")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat image: %w", err)
		}

		p, err := a.Registry.SetAvatar(cmd.Context(), userID, args[0], f, info.Size())
		if err != nil {
			return err
		}

		fmt.Printf("Avatar updated: %s\n", p.AvatarURL)
		return nil
	},
}

// artwork commands
var artworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "Manage artworks",
}

var artworkAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Register a new artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("artwork add")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		artist, _ := cmd.Flags().GetString("artist")
		year, _ := cmd.Flags().GetString("year")
		medium, _ := cmd.Flags().GetString("medium")
		dimensions, _ := cmd.Flags().GetString("dimensions")
		tagUID, _ := cmd.Flags().GetString("tag")
		imagePath, _ := cmd.Flags().GetString("image")

		draft := artag.ArtworkDraft{
			Title:      args[0],
			Artist:     artist,
			Year:       year,
			Medium:     medium,
			Dimensions: dimensions,
			NFCTagUID:  artag.NormalizeUID(tagUID),
		}

		artwork, err := a.Registry.CreateArtwork(cmd.Context(), userID, draft)
		if err != nil {
			return err
		}

		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat image: %w", err)
			}

			artwork, err = a.Registry.AttachImage(cmd.Context(), artwork.ID, imagePath, f, info.Size())
			if err != nil {
				return fmt.Errorf("attaching image: %w", err)
			}
		}

		fmt.Printf("Artwork registered: %s (%s)\n", artwork.Title, artwork.ID)
		if draft.NFCTagUID != "" {
			fmt.Printf("Linked tag: %s\n", draft.NFCTagUID)
		}
		return nil
	},
}

var artworkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your artworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("artwork list")
		if err != nil {
			return err
		}
		defer a.Close()

		userID, err := currentUserID(a)
		if err != nil {
			return err
		}

		artworks, err := a.Registry.ListArtworks(cmd.Context(), userID)
		if err != nil {
			return err
		}

		if len(artworks) == 0 {
			fmt.Println("No artworks registered.")
			return nil
		}

		for _, aw := range artworks {
			marker := " "
			if aw.Status == model.StatusVerified {
				marker = "*"
			}
			fmt.Printf("%s %-36s  %-10s  %s\n", marker, aw.ID, aw.Status, aw.Title)
		}
		return nil
	},
}

var artworkShowCmd = &cobra.Command{
	Use:   "show ARTWORK_ID",
	Short: "View artwork details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("artwork show")
		if err != nil {
			return err
		}
		defer a.Close()

		artwork, err := a.Registry.GetArtwork(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printArtwork(artwork)

		certs, err := a.Registry.ListCertificates(cmd.Context(), artwork.ID)
		if err != nil {
			return err
		}
		for _, c := range certs {
			fmt.Printf("Cert:       %s (issued %s)\n", c.CertificateID, c.GeneratedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var artworkUpdateCmd = &cobra.Command{
	Use:   "update ARTWORK_ID",
	Short: "Update artwork fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("artwork update")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		upd := artag.ArtworkUpdate{
			Title:      stringFlag(cmd, "title"),
			Artist:     stringFlag(cmd, "artist"),
			Year:       stringFlag(cmd, "year"),
			Medium:     stringFlag(cmd, "medium"),
			Dimensions: stringFlag(cmd, "dimensions"),
		}

		artwork, err := a.Registry.UpdateArtwork(cmd.Context(), args[0], upd)
		if err != nil {
			return err
		}

		fmt.Printf("Artwork updated: %s\n", artwork.Title)
		return nil
	},
}

var artworkDeleteCmd = &cobra.Command{
	Use:   "delete ARTWORK_ID",
	Short: "Delete an artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("artwork delete")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		if err := a.Registry.DeleteArtwork(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Artwork deleted.")
		return nil
	},
}

// cert commands
var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage certificates of authenticity",
}

var certIssueCmd = &cobra.Command{
	Use:   "issue ARTWORK_ID",
	Short: "Issue a certificate for an artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("cert issue")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		cert, err := a.Registry.IssueCertificate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Certificate issued: %s\n", cert.CertificateID)
		fmt.Printf("QR code: %s\n", cert.QRCodeURL)
		return nil
	},
}

var certListCmd = &cobra.Command{
	Use:   "list ARTWORK_ID",
	Short: "List certificates for an artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("cert list")
		if err != nil {
			return err
		}
		defer a.Close()

		certs, err := a.Registry.ListCertificates(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(certs) == 0 {
			fmt.Println("No certificates issued.")
			return nil
		}

		for _, c := range certs {
			fmt.Printf("%s  %s  %s\n", c.CertificateID, c.GeneratedAt.Format("2006-01-02 15:04:05"), c.BlockchainHash)
		}
		return nil
	},
}

var certRevokeCmd = &cobra.Command{
	Use:   "revoke CERT_ID",
	Short: "Revoke a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("cert revoke")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		if err := a.Registry.RevokeCertificate(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, artag.ErrNotFound) {
				return fmt.Errorf("certificate %s not found", args[0])
			}
			return err
		}

		fmt.Println("Certificate revoked.")
		return nil
	},
}

// tag commands
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage NFC tags",
}

var tagLinkCmd = &cobra.Command{
	Use:   "link UID ARTWORK_ID",
	Short: "Bind a tag to an artwork",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("tag link")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		uid := artag.NormalizeUID(args[0])
		if err := a.Registry.LinkTag(cmd.Context(), uid, args[1]); err != nil {
			return err
		}

		fmt.Printf("Tag %s linked to artwork %s\n", uid, args[1])
		return nil
	},
}

var tagUnlinkCmd = &cobra.Command{
	Use:   "unlink UID",
	Short: "Release a tag from its artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("tag unlink")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := currentUserID(a); err != nil {
			return err
		}

		uid := artag.NormalizeUID(args[0])
		if err := a.Registry.UnlinkTag(cmd.Context(), uid); err != nil {
			if errors.Is(err, artag.ErrNotFound) {
				return fmt.Errorf("tag %s is not registered", uid)
			}
			return err
		}

		fmt.Printf("Tag %s unlinked\n", uid)
		return nil
	},
}

var tagShowCmd = &cobra.Command{
	Use:   "show UID",
	Short: "View a tag and its artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("tag show")
		if err != nil {
			return err
		}
		defer a.Close()

		uid := artag.NormalizeUID(args[0])
		tag, artwork, err := a.Registry.ResolveTag(cmd.Context(), uid)
		if err != nil {
			return err
		}

		if tag == nil {
			fmt.Printf("Tag %s is not registered.\n", uid)
			return nil
		}

		fmt.Printf("UID:   %s\n", tag.UID)
		if artwork == nil {
			fmt.Println("State: unbound")
			return nil
		}

		fmt.Println("State: bound")
		fmt.Println()
		printArtwork(artwork)
		return nil
	},
}

// scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a tag and look up its artwork",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("scan")
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.Reader.Available() {
			return fmt.Errorf("no NFC reader available")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		controller := a.NewScanController(artag.NavigatorFunc(func(artworkID string) {
			artwork, err := a.Registry.GetArtwork(ctx, artworkID)
			if err != nil {
				fmt.Printf("Could not load artwork %s: %v\n", artworkID, err)
				return
			}
			fmt.Println()
			printArtwork(artwork)
		}))

		fmt.Println("Hold a tag near the reader... (Ctrl-C to cancel)")

		switch controller.Scan(ctx) {
		case artag.StateFound:
			// Navigator already printed the artwork.
		case artag.StateNotFound:
			uid := controller.UID()
			fmt.Printf("Tag %s is not linked to any artwork.\n", uid)
			fmt.Printf("Link it with 'artag tag link %s ARTWORK_ID'\n", uid)
			fmt.Printf("or register a new artwork with 'artag artwork add TITLE --tag %s'\n", uid)
		case artag.StateError:
			return fmt.Errorf("%s", controller.Message())
		}
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent scans",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("history")
		if err != nil {
			return err
		}
		defer a.Close()

		recent, err := a.History.LoadRecent()
		if err != nil {
			return err
		}

		if len(recent.Entries) == 0 {
			fmt.Println("No scans recorded.")
			return nil
		}

		for _, e := range recent.Entries {
			fmt.Printf("%s  %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.ArtworkTitle)
		}
		fmt.Printf("\n%d scan(s) across %d artwork(s)\n", recent.TotalScans, recent.DistinctArtworks)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().String("username", "", "New username")
	profileUpdateCmd.Flags().String("full-name", "", "Display name")
	profileUpdateCmd.Flags().String("bio", "", "Short bio")
	profileCmd.AddCommand(profileAvatarCmd)

	artworkCmd.AddCommand(artworkAddCmd)
	artworkAddCmd.Flags().String("artist", "", "Artist name")
	artworkAddCmd.Flags().String("year", "", "Year of creation")
	artworkAddCmd.Flags().String("medium", "", "Medium, e.g. oil on canvas")
	artworkAddCmd.Flags().String("dimensions", "", "Physical dimensions")
	artworkAddCmd.Flags().String("tag", "", "NFC tag UID to link")
	artworkAddCmd.Flags().String("image", "", "Path to an image file")
	artworkCmd.AddCommand(artworkListCmd)
	artworkCmd.AddCommand(artworkShowCmd)
	artworkCmd.AddCommand(artworkUpdateCmd)
	artworkUpdateCmd.Flags().String("title", "", "New title")
	artworkUpdateCmd.Flags().String("artist", "", "Artist name")
	artworkUpdateCmd.Flags().String("year", "", "Year of creation")
	artworkUpdateCmd.Flags().String("medium", "", "Medium")
	artworkUpdateCmd.Flags().String("dimensions", "", "Physical dimensions")
	artworkCmd.AddCommand(artworkDeleteCmd)

	certCmd.AddCommand(certIssueCmd)
	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certRevokeCmd)

	tagCmd.AddCommand(tagLinkCmd)
	tagCmd.AddCommand(tagUnlinkCmd)
	tagCmd.AddCommand(tagShowCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(artworkCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(historyCmd)
}
