package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"

	sel "volunteerhub/tests/selectors"
)

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
}

func (s *TestSuite1) SetupSuite() {
	fmt.Println("setupSuite")
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(botConfigPath, "-bot-config MUST be set")
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get("http://0.0.0.0:3000/")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	fmt.Println("teardown Suite1")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) TestHandlers() {
	fmt.Println("test handlers")
	defer fmt.Println("test finished")

	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	defer cancelTimeout()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var logo string
	err := chromedp.Run(ctx,
		s.CheckGuestRedirectedToSignin(`http://0.0.0.0:3000/volunteer-dashboard`),
		s.CheckGuestRedirectedToSignin(`http://0.0.0.0:3000/volunteer`),
		s.CheckGuestRedirectedToSignin(`http://0.0.0.0:3000/volunteer-history`),
		s.CheckGuestRedirectedToSignin(`http://0.0.0.0:3000/notifications`),
		s.CheckGuestRedirectedToSignin(`http://0.0.0.0:3000/admin`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signin`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signout`),
		s.CheckGuestAccessGranted(`http://0.0.0.0:3000/signup`),
		chromedp.Navigate(`http://0.0.0.0:3000/`),
		chromedp.Text(sel.Logo, &logo),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if logo != "VolunteerHub" {
				err := errors.New("invalid logo text: " + logo)
				var screenShot []byte
				chromedp.FullScreenshot(&screenShot, 80).Do(ctx)
				if errW := os.WriteFile("invalid_logo.png", screenShot, 0o644); errW != nil {
					return errors.Join(errW, err)
				}
				return err
			}
			return nil
		}),
		chromedp.Navigate(`http://0.0.0.0:3000/signin`),
		chromedp.WaitVisible(sel.SignInFormEmail),
		chromedp.WaitVisible(sel.SignInFormPass),
		chromedp.WaitVisible(sel.SignInFormSubmit),
		chromedp.Navigate(`http://0.0.0.0:3000/signup`),
		chromedp.WaitVisible(sel.SignUpFormPassRepeat),
		chromedp.WaitVisible(sel.SignUpFormSubmit),
	)

	if err != nil {
		s.T().Fatalf(err.Error())
	}
	s.Equal("VolunteerHub", logo)
}

func (s *TestSuite1) CheckGuestRedirectedToSignin(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("guest visiting %s should land on the signin page (status 200), server answered %d", path, resp.Status)
			}
			var location string
			if err := chromedp.Location(&location).Do(ctx); err != nil {
				return err
			}
			if location != "http://0.0.0.0:3000/signin" {
				s.T().Errorf("guest visiting %s should be redirected to /signin, landed on %s", path, location)
			}
			return nil
		}),
	}
}

func (s *TestSuite1) CheckGuestAccessGranted(path string) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != http.StatusOK {
				s.T().Errorf("guests should be able to open %s (status 200), server answered %d", path, resp.Status)
			}
			return nil
		}),
	}
}
