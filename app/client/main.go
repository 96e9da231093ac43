package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"article-admin-console/app/client/api"
	"article-admin-console/app/client/forms"
	"article-admin-console/app/client/inits"
	"article-admin-console/app/client/state"

	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 准备 API 客户端与会话
	c := api.New(cfg.ServerEndpoint)
	sess := forms.NewSession(cfg.SessionFile)
	if err := sess.Restore(); err != nil {
		l.Warn("failed to restore session", zap.Error(err))
	} else if sess.Token != "" {
		c.SetToken(sess.Token)
		fmt.Printf("welcome back, %s\n", sess.User.Name)
	}

	// 文章状态：启动时拉取一次
	articles := state.NewStore()
	if err := articles.Load(c.FetchArticles); err != nil {
		l.Warn("failed to fetch articles", zap.Error(err))
	}

	editor := forms.NewUserEditor(c)

	// 命令循环
	scanner := bufio.NewScanner(os.Stdin)
	printHelp()
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "register":
			doRegister(scanner, c, sess)
		case "articles":
			if articles.Loading() {
				fmt.Println("loading...")
				continue
			}
			for _, article := range articles.Articles() {
				fmt.Printf("#%d %s\n  %s\n", article.ID, article.Title, article.Content)
			}
		case "users":
			if err := editor.Refresh(); err == nil {
				for _, user := range editor.Users() {
					fmt.Printf("#%d %s <%s> article=%v category=%v\n",
						user.ID, user.Name, user.Email,
						user.Permissions.ArticleManagement, user.Permissions.CategoryManagement)
				}
			}
			printNotice(editor)
		case "save":
			doSave(scanner, editor)
		case "delete":
			if len(fields) != 2 {
				fmt.Println("usage: delete <id>")
				continue
			}
			id, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Println("usage: delete <id>")
				continue
			}
			_ = editor.Delete(uint(id))
			printNotice(editor)
		case "quit", "exit":
			return
		default:
			printHelp()
		}
	}
}

func printHelp() {
	fmt.Println("commands: register | articles | users | save | delete <id> | quit")
}

func printNotice(editor *forms.UserEditor) {
	if n := editor.Notice(); n != "" {
		fmt.Println(n)
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func doRegister(scanner *bufio.Scanner, c *api.Client, sess *forms.Session) {
	form := forms.RegisterForm{
		Username:        prompt(scanner, "username"),
		Email:           prompt(scanner, "email"),
		Password:        prompt(scanner, "password"),
		ConfirmPassword: prompt(scanner, "confirm password"),
	}

	if errs, ok := form.Validate(); !ok {
		for _, msg := range []string{errs.Username, errs.Email, errs.Password, errs.ConfirmPassword} {
			if msg != "" {
				fmt.Println(msg)
			}
		}
		return
	}

	msg, err := form.Submit(c, sess)
	fmt.Println(msg)
	if err == nil {
		// 注册成功，稍作停顿后回到首页
		time.Sleep(forms.NavigateDelay)
		printHelp()
	}
}

func doSave(scanner *bufio.Scanner, editor *forms.UserEditor) {
	var draft forms.UserDraft
	if idStr := prompt(scanner, "id (empty to create)"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			fmt.Println("invalid id")
			return
		}
		draft.ID = uint(id)
	}

	draft.Name = prompt(scanner, "name")
	if draft.ID == 0 {
		draft.Email = prompt(scanner, "email")
		draft.Password = prompt(scanner, "password")
	}
	draft.ArticleManagement = prompt(scanner, "article management (y/n)") == "y"
	draft.CategoryManagement = prompt(scanner, "category management (y/n)") == "y"

	_ = editor.Save(draft)
	printNotice(editor)
}
