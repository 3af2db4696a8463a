package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/h33n313/nazarsanji-omidhospital/client"
	"github.com/h33n313/nazarsanji-omidhospital/model"
)

// 问卷终端命令行：提交答卷、查看最新答卷、轮询新答卷提醒
// 远端不可达时自动降级到本地缓存，终端侧永不失败
func main() {
	server := flag.String("server", "http://127.0.0.1:3000", "服务端地址")
	dataDir := flag.String("data", ".", "本地存储目录")
	submit := flag.String("submit", "", "提交答卷，参数为 answers 的 JSON")
	list := flag.Int("list", 0, "显示最新 N 条答卷")
	watch := flag.Bool("watch", false, "轮询新答卷并打印提醒")
	interval := flag.Duration("interval", 30*time.Second, "轮询间隔")
	pin := flag.String("pin", "", "校验管理 PIN")
	flag.Parse()

	kv := client.NewFileKV(filepath.Join(*dataDir, "kiosk_local.json"))
	c := client.NewClient(&client.Config{BaseURL: *server}, kv)
	ctx := context.Background()

	switch {
	case *pin != "":
		gate := client.NewPinGate(kv)
		success, isMaster := gate.VerifyPin(*pin)
		if !success {
			fmt.Println("PIN 校验失败")
			os.Exit(1)
		}
		if isMaster {
			fmt.Println("PIN 校验通过（主 PIN）")
		} else {
			fmt.Println("PIN 校验通过")
		}

	case *submit != "":
		var answers map[string]interface{}
		if err := json.Unmarshal([]byte(*submit), &answers); err != nil {
			log.Fatalf("answers 参数解析失败: %v", err)
		}
		rec := c.Create(ctx, answers)
		fmt.Printf("已提交: %s (%s)\n", rec.ID, rec.Timestamp)

	case *list > 0:
		recs := c.FetchAll(ctx)
		if *list < len(recs) {
			recs = recs[:*list]
		}
		for _, rec := range recs {
			fmt.Printf("%s  %s  %d 项作答\n", rec.Timestamp, rec.ID, len(rec.Answers))
		}

	case *watch:
		recs := c.FetchAll(ctx)
		log.Printf("当前共 %d 条答卷，开始轮询...", len(recs))

		p := client.NewPoller(c, *interval, func(delta int, recs []model.Submission) {
			log.Printf("新增 %d 条答卷，当前共 %d 条", delta, len(recs))
		})
		p.Prime(len(recs))

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			p.Stop()
		}()
		p.Start(ctx)

	default:
		flag.Usage()
	}
}
